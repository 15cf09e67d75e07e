//go:build ignore
// +build ignore

// Demo script to show the pull preview rendering in action
// Run with: go run scripts/demo-diff-render.go
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/harrison/dotsync/internal/diff"
	"github.com/harrison/dotsync/internal/display"
)

func main() {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Dotsync Pull Preview Demo")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	renderer := diff.NewRenderer(os.Stdout)

	// Demo 1: a modified file with in-line emphasis on the changed parts
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println("Demo 1: Modified File")
	fmt.Println(strings.Repeat("-", 60))

	before := strings.Join([]string{
		"font_family JetBrains Mono",
		"font_size 12",
		"enable_audio_bell yes",
		"",
	}, "\n")
	after := strings.Join([]string{
		"font_family JetBrains Mono",
		"font_size 14",
		"enable_audio_bell no",
		"background_opacity 0.95",
		"",
	}, "\n")

	renderer.Render(diff.Compute("kitty/kitty.conf", before, after))
	fmt.Println()

	// Demo 2: files without a line diff
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println("Demo 2: Added and Binary Files")
	fmt.Println(strings.Repeat("-", 60))

	renderer.RenderAdded("nvim/lua/plugins.lua")
	renderer.RenderModified("wallpapers/main.png")
	fmt.Println()

	// Demo 3: batch deploy progress and failure warning
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println("Demo 3: Batch Deploy Display")
	fmt.Println(strings.Repeat("-", 60))

	progress := display.NewProgressIndicator(os.Stdout, 3)
	progress.Start()
	for _, name := range []string{"kitty", "nvim", "zsh"} {
		progress.Step(name)
	}
	progress.Complete()

	warning := display.WarnFailedConfigs("1 of 3 configurations could not be deployed", []string{"zsh"})
	warning.Suggestion = "Deploy the failing configurations individually to see their errors."
	warning.Display(os.Stdout)

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Demo Complete!")
	fmt.Println(strings.Repeat("=", 60))
}
