package main

import "github.com/Berucha/FitStreak/cmd/fitstreak"

func main() {
	fitstreak.Execute()
}
