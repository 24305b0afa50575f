package service

const (
	// Width of the "next targets" histogram window shown after the
	// current Eddington number
	NextTargetsWindow = 10

	// Pagination default for the activities list
	DefaultPageSize = 15
)
