package main

import "github.com/kevindowling/logcat-viewer/internal/cmd"

func main() {
	cmd.Execute()
}
