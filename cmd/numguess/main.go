// Command numguess is the console number guessing game.
package main

import "github.com/jackb1434/GuessingGame/internal/cli"

func main() {
	cli.Run(false)
}
