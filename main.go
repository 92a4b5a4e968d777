package main

import "paperboy/internal/game"

func main() {
	game.RunDesktop()
}
