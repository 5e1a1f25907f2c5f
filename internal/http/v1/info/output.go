package info

// GetOutput is the response wrapper for the info endpoint.
type GetOutput struct {
	Body Data
}
