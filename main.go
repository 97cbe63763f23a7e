package main

import "github.com/MeKo-Tech/pixsynth/internal/cmd"

func main() {
	cmd.Execute()
}
