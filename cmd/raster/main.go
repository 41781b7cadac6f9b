package main

import (
	"fmt"
	"os"
)

func main() {
	if err := App.Run(os.Args); err != nil {
		fmt.Println("Error running CLI app:", err)
		os.Exit(1)
	}
}
