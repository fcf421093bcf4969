package main

import "fmt"

// Run executes the dsl command.
func (c *DSLCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, deps.Locator.DSLRefForProperty(c.Type, c.Property))
	return nil
}
