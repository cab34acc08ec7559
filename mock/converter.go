package mock

import "github.com/fwojciec/jobnotice"

var _ jobnotice.Converter = (*Converter)(nil)

// Converter is a mock implementation of jobnotice.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
