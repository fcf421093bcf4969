package main

import "fmt"

// Run executes the samples command.
func (c *SamplesCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, deps.Locator.SampleIndex())
	return nil
}

// Run executes the sample command.
func (c *SampleCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, deps.Locator.SampleFor(c.ID))
	return nil
}
