// Package entities contains core business entities.
package entities

// Team groups members and sprints under a name. Teams are soft-deleted
// by clearing Active.
type Team struct {
	ID      string
	Name    string
	Active  bool
	Members []TeamMember
}
