// Package runner performs one apodwall invocation.
//
// A run builds today's page URL, fetches the page, picks the picture (the
// downloaded image or the fallback file), prints the caption and applies the
// picture as the desktop background. Every step hands its result to the
// next one explicitly; the only cached state is the platform detector.
//
// Usage:
//
//	r, err := runner.New(cfg, ui.NewConsole(os.Stdout), logger.GetLogger())
//	if err != nil {
//	    return err
//	}
//	report, err := r.Run()
//
// A fetch or write failure ends the run with an error. Failing to set the
// wallpaper does not: it is reported on the console and in the Report.
package runner
