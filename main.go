package main

import "github.com/fightpulse/combat-api/cmd"

// @title           FightPulse API
// @version         1.0.0
// @description     Combat sports content and cross-entity search API
// @contact.name    API Support
// @contact.url     https://github.com/fightpulse/combat-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
