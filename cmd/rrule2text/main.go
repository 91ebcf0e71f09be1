package main

import "github.com/nmichkarev/rrule/internal/cli"

func main() {
	cli.Execute()
}
