// Package entities contains core business entities.
package entities

// TeamMember is a person who can be allocated to sprints. The team
// reference is optional; members may exist unassigned.
type TeamMember struct {
	ID     string
	Name   string
	Skill  string
	Active bool
	TeamID *string
}
