package hello

// GetOutput carries the greeting as a raw text body.
type GetOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}
