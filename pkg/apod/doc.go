// Package apod fetches the Astronomy Picture of the Day page and scrapes it.
//
// Scraping is line oriented on purpose: the image reference is the first
// quoted string on the first line matching "image...jpg", and the caption is
// the run of lines between "Explanation:" and "Tomorrow's picture:" with
// tags removed. Malformed pages therefore degrade the same way every time.
//
// Example usage:
//
//	client := apod.NewClient(cfg.HTTP, log)
//	resp, err := client.Get(apod.PageURL(cfg.APOD.Domain, time.Now(), cfg.APOD.Params))
//	if err != nil {
//	    return err
//	}
//	if ref, ok := apod.LocateImage(resp.Text()); ok {
//	    imageURL := apod.ImageURL(cfg.APOD.Domain, ref.Path)
//	}
//	fmt.Println(apod.ExtractCaption(resp.Text()))
package apod
