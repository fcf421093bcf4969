package main

import "fmt"

// Run executes the userguide command.
func (c *UserguideCmd) Run(deps *Dependencies) error {
	var url string
	if c.Section == "" {
		url = deps.Locator.DocumentationFor(c.ID)
	} else {
		url = deps.Locator.DocumentationForSection(c.ID, c.Section)
	}
	fmt.Fprintln(deps.Stdout, url)
	return nil
}

// Run executes the recommend command.
func (c *RecommendCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, deps.Locator.RecommendationFor(c.Topic, c.ID, c.Section))
	return nil
}
