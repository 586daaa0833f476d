package main

import "github.com/Madhacks12/drinktrack/cmd/drinktrack"

func main() {
	drinktrack.Execute()
}
