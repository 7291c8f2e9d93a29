package downloader

import (
	"bytes"
	"image"
	"io"
	"time"

	// Decoders registered for image.DecodeConfig
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"apodwall/pkg/apod"
	errs "apodwall/pkg/errors"
	"apodwall/pkg/logger"
)

// Fetcher performs a GET and returns the whole response
type Fetcher interface {
	Get(url string) (*apod.Response, error)
}

// ImageStorage stores the downloaded picture
type ImageStorage interface {
	SaveImage(r io.Reader, name string) (string, int64, error)
	Exists(name string) bool
	Path(name string) string
}

// Reporter prints the human facing diagnostic lines
type Reporter interface {
	Println(text string)
}

// Options controls where pictures come from and where they go
type Options struct {
	// Domain is the scheme and host the relative image path is joined to
	Domain string
	// PagePath is the page path used in the not-found diagnostic
	PagePath string
	// ImageFile is the name the downloaded picture is written to
	ImageFile string
	// FallbackFile is used when the page has no picture
	FallbackFile string
}

// Selection is the file chosen for the wallpaper
type Selection struct {
	Path     string
	Fallback bool
	ImageURL string
	Size     int64
	// Status is the HTTP status code of the image response
	Status int

	// Filled in when the downloaded bytes could be decoded
	Format string
	Width  int
	Height int
}

// Downloader picks the picture for one run
type Downloader struct {
	client   Fetcher
	storage  ImageStorage
	reporter Reporter
	opts     Options
	logger   logger.Logger
}

// New creates a downloader
func New(client Fetcher, storage ImageStorage, reporter Reporter, opts Options, log logger.Logger) *Downloader {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Downloader{
		client:   client,
		storage:  storage,
		reporter: reporter,
		opts:     opts,
		logger:   log,
	}
}

// Download scans body for a picture and saves it. The response body is
// written whatever its status; only transport and write failures are
// errors. When the page has no picture the fallback file is selected and
// nothing is written.
func (d *Downloader) Download(body string) (*Selection, error) {
	ref, found := apod.LocateImage(body)
	if !found {
		return d.fallback(), nil
	}

	imageURL := apod.ImageURL(d.opts.Domain, ref.Path)
	d.logger.DebugWithFields("Image reference found", map[string]interface{}{
		"path": ref.Path,
		"url":  imageURL,
	})

	start := time.Now()
	resp, err := d.client.Get(imageURL)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		statusErr := &errs.Error{
			Type:    errs.ErrorTypeHTTPStatus,
			Message: "image request returned " + resp.Status,
			Code:    resp.StatusCode,
		}
		d.logger.WithError(statusErr).WarnWithFields("Image request was not successful, saving the body anyway", map[string]interface{}{
			"url": imageURL,
		})
	}

	path, size, err := d.storage.SaveImage(bytes.NewReader(resp.Body), d.opts.ImageFile)
	if err != nil {
		return nil, errs.New(errs.ErrorTypeFilesystem, err, "failed to save image: %v", err)
	}

	sel := &Selection{
		Path:     path,
		ImageURL: imageURL,
		Size:     size,
		Status:   resp.StatusCode,
	}
	d.sniff(sel, resp.Body)

	d.logger.InfoWithFields("Image downloaded", map[string]interface{}{
		"url":      imageURL,
		"path":     path,
		"size":     size,
		"format":   sel.Format,
		"width":    sel.Width,
		"height":   sel.Height,
		"duration": time.Since(start),
	})
	return sel, nil
}

func (d *Downloader) fallback() *Selection {
	d.reporter.Println("#ERROR!#")
	d.reporter.Println("No image found at " + d.opts.Domain + d.opts.PagePath)
	d.reporter.Println("--> Using " + d.opts.FallbackFile)

	if !d.storage.Exists(d.opts.FallbackFile) {
		d.logger.WarnWithFields("Fallback image is missing", map[string]interface{}{
			"path": d.storage.Path(d.opts.FallbackFile),
		})
	}

	return &Selection{
		Path:     d.storage.Path(d.opts.FallbackFile),
		Fallback: true,
	}
}

// sniff records the image format and size; undecodable data only warns
func (d *Downloader) sniff(sel *Selection, data []byte) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		d.logger.WithError(err).WarnWithFields("Downloaded file is not a recognised image", map[string]interface{}{
			"path": sel.Path,
		})
		return
	}
	sel.Format = format
	sel.Width = cfg.Width
	sel.Height = cfg.Height
}
