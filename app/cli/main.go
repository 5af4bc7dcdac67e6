package main

import "predictBot/internal/cmd"

func main() {
	cmd.Execute()
}
