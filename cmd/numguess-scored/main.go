// Command numguess-scored is the guessing game with points and a running total.
package main

import "github.com/jackb1434/GuessingGame/internal/cli"

func main() {
	cli.Run(true)
}
