// Package ui provides console output and desktop notifications for apodwall
package ui

/*
Example usage of the UI components:

	console := ui.NewConsole(os.Stdout)
	console.PrintLogo()                              // Cyan logo, skipped when quiet
	console.PrintInfo("Page", pageURL)               // Label/value pair
	console.PrintWarning("No image found")           // Yellow line
	console.PrintSuccess("Wallpaper set")            // Green line
	console.PrintError("Fetch failed", err)          // Red line
	console.Puts(caption)                            // Plain text, newline added if missing

	notifier := ui.NewNotifier(platform.Linux)
	_ = notifier.Send("APOD", "Wallpaper updated")
*/
