// Package display provides terminal UI utilities for progress and warning
// output of the dotsync CLI.
//
// # Progress Indicators
//
// Use ProgressIndicator when deploying several configurations:
//
//	progress := display.NewProgressIndicator(os.Stdout, len(names))
//	progress.Start()
//	for _, name := range names {
//	    progress.Step(name)
//	    // ... deploy configuration ...
//	}
//	progress.Complete()
//
// For a single configuration:
//
//	display.DisplaySingleConfig(os.Stdout, name)
//
// # Warning Messages
//
// Display warnings with optional components:
//
//	warning := display.Warning{
//	    Title:      "deploy finished with failures",
//	    Message:    "2 of 5 configurations could not be deployed",
//	    Configs:    []string{"nvim", "kitty"},
//	    Suggestion: "Run with --verbose for details",
//	}
//	warning.Display(os.Stderr)
//
// Or use the convenience factory:
//
//	warning := display.WarnFailedConfigs("deploy finished with failures", failed)
//	warning.Display(os.Stderr)
//
// # ANSI Colors
//
//   - Cyan (\x1b[36m) for progress steps
//   - Green (\x1b[32m) for success messages
//   - Yellow (\x1b[33m) for warnings
//   - Reset (\x1b[0m) after each colored section
//
// All functions accept io.Writer interfaces for testability.
package display
