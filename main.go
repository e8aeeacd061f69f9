package main

import "github.com/lexcounsel/site-backend/cmd"

func main() {
	cmd.Execute()
}
