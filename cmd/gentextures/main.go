package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/gallery/internal/texture"
)

func main() {
	dir := flag.String("out", "assets", "output directory")
	flag.Parse()

	fmt.Println("Shooting Gallery Texture Generator")
	fmt.Println("==================================")
	fmt.Println()

	paths, err := texture.GenerateAndSave(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, p := range paths {
		fmt.Printf("Generated %s\n", p)
	}

	fmt.Println()
	fmt.Println("Done! Run the game to use the textures.")
}
