package service

import "fmt"

const (
	teamLogoTemplate    = "https://www.mlbstatic.com/team-logos/%d.svg"
	playerPhotoTemplate = "https://img.mlbstatic.com/mlb-photos/image/upload/d_people:generic:headshot:67:current.png/w_426,q_auto:best/v1/people/%d/headshot/67/current"
)

// TeamLogoURL returns the CDN logo for a team id.
func TeamLogoURL(teamID int) string {
	return fmt.Sprintf(teamLogoTemplate, teamID)
}

// PlayerPhotoURL returns the CDN headshot for a player id.
func PlayerPhotoURL(playerID int) string {
	return fmt.Sprintf(playerPhotoTemplate, playerID)
}
