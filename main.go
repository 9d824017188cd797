/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "example.com/Goodness/cmd"

func main() {
	cmd.Execute()
}
