package runner

import (
	"fmt"
	"strings"
	"time"

	"apodwall/internal/downloader"
	"apodwall/pkg/apod"
	"apodwall/pkg/config"
	errs "apodwall/pkg/errors"
	"apodwall/pkg/logger"
	"apodwall/pkg/metadata"
	"apodwall/pkg/platform"
	"apodwall/pkg/storage"
	"apodwall/pkg/ui"
	"apodwall/pkg/wallpaper"
)

const (
	noSourceMessage = "There is no source code!?"
	failureMessage  = "Crap! Something went wrong when trying to set the desktop background..."
	notifyTitle     = "APOD wallpaper"
)

// SuccessMessage is printed once the wallpaper has been applied
func SuccessMessage(pageURL string) string {
	return fmt.Sprintf("The image from %s has successfully been set as the current desktop background!", pageURL)
}

// Report summarises one run
type Report struct {
	Date         time.Time
	PageURL      string
	PageStatus   int
	Selection    *downloader.Selection
	Caption      string
	Wallpaper    wallpaper.Result
	MetadataPath string
}

// Runner executes the fetch, pick, caption and apply sequence
type Runner struct {
	config   *config.Config
	client   downloader.Fetcher
	storage  *storage.Manager
	console  *ui.Console
	detector *platform.Detector
	setter   WallpaperSetter
	notifier Notifier
	date     time.Time
	now      func() time.Time
	logger   logger.Logger
}

// Option customises a Runner
type Option func(*Runner)

// WithClient replaces the HTTP client
func WithClient(c downloader.Fetcher) Option {
	return func(r *Runner) { r.client = c }
}

// WithSetter replaces the wallpaper setter
func WithSetter(s WallpaperSetter) Option {
	return func(r *Runner) { r.setter = s }
}

// WithNotifier replaces the desktop notifier
func WithNotifier(n Notifier) Option {
	return func(r *Runner) { r.notifier = n }
}

// WithDetector replaces the platform detector
func WithDetector(d *platform.Detector) Option {
	return func(r *Runner) { r.detector = d }
}

// WithClock replaces the clock. It picks the page date unless WithDate is
// given and stamps the metadata fetch time.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// WithDate fetches the page of day instead of today
func WithDate(day time.Time) Option {
	return func(r *Runner) { r.date = day }
}

// New creates a Runner from cfg. Output goes to console.
func New(cfg *config.Config, console *ui.Console, log logger.Logger, opts ...Option) (*Runner, error) {
	if log == nil {
		log = logger.GetLogger()
	}

	store, err := storage.NewManager(cfg.Output.Directory)
	if err != nil {
		return nil, errs.New(errs.ErrorTypeFilesystem, err, "%v", err)
	}

	r := &Runner{
		config:  cfg,
		storage: store,
		console: console,
		now:     time.Now,
		logger:  log,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.detector == nil {
		r.detector = &platform.Detector{
			OnUnknown: func(id string) {
				console.Println(fmt.Sprintf("unknown os: %q", id))
			},
		}
	}
	if r.client == nil {
		r.client = apod.NewClient(cfg.HTTP, log)
	}
	if r.setter == nil {
		r.setter = wallpaper.NewSetter(r.detector, log)
	}

	return r, nil
}

// Run performs one invocation. Only fetch and write failures are returned
// as errors; the wallpaper outcome is part of the Report.
func (r *Runner) Run() (*Report, error) {
	report := &Report{Date: r.date}
	if report.Date.IsZero() {
		report.Date = r.now()
	}
	report.PageURL = apod.PageURL(r.config.APOD.Domain, report.Date, r.config.APOD.Params)

	logger.LogStep(r.logger, "fetch_page", map[string]interface{}{"url": report.PageURL})
	resp, err := r.client.Get(report.PageURL)
	if err != nil {
		r.logger.WithError(err).Error("Failed to fetch page")
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	report.PageStatus = resp.StatusCode
	if !resp.OK() {
		r.logger.WarnWithFields("Page returned a non-success status", map[string]interface{}{
			"url":    report.PageURL,
			"status": resp.Status,
		})
	}

	body := resp.Text()
	if body == "" {
		r.console.Println(noSourceMessage)
	}

	logger.LogStep(r.logger, "download_image", nil)
	dl := downloader.New(r.client, r.storage, r.console, downloader.Options{
		Domain:       r.config.APOD.Domain,
		PagePath:     apod.PagePath(report.Date),
		ImageFile:    r.config.Output.ImageFile,
		FallbackFile: r.config.Output.FallbackFile,
	}, r.logger)
	report.Selection, err = dl.Download(body)
	if err != nil {
		r.logger.WithError(err).Error("Failed to download image")
		return nil, fmt.Errorf("failed to download image: %w", err)
	}

	report.Caption = apod.ExtractCaption(body)
	r.console.Puts(report.Caption)

	logger.LogStep(r.logger, "set_wallpaper", map[string]interface{}{"path": report.Selection.Path})
	report.Wallpaper = r.setter.Apply(report.Selection.Path)
	if report.Wallpaper.Applied {
		r.console.PrintSuccess(SuccessMessage(report.PageURL))
	} else {
		r.console.PrintError(failureMessage)
	}

	if r.config.Output.SaveMetadata {
		r.saveMetadata(report)
	}
	if r.config.Notifications.Enabled {
		r.notify(report)
	}

	return report, nil
}

func (r *Runner) saveMetadata(report *Report) {
	sel := report.Selection
	meta := &metadata.PictureMetadata{
		Date:      report.Date.Format("2006-01-02"),
		PageURL:   report.PageURL,
		ImageURL:  sel.ImageURL,
		File:      sel.Path,
		Fallback:  sel.Fallback,
		FileSize:  sel.Size,
		Format:    sel.Format,
		Width:     sel.Width,
		Height:    sel.Height,
		Caption:   strings.TrimSpace(report.Caption),
		FetchedAt: r.now(),
	}

	path, err := meta.Save(r.storage)
	if err != nil {
		r.logger.WithError(err).Warn("Failed to save picture metadata")
		return
	}
	report.MetadataPath = path
	r.logger.DebugWithFields("Picture metadata saved", map[string]interface{}{
		"path":   path,
		"aspect": meta.GetAspectRatio(),
	})
}

func (r *Runner) notify(report *Report) {
	if r.notifier == nil {
		r.notifier = ui.NewNotifier(r.detector.Detect())
	}
	if !r.notifier.Enabled() {
		return
	}

	message := "The desktop background could not be set"
	if report.Wallpaper.Applied {
		message = "Today's picture is now your desktop background"
	}
	if err := r.notifier.Send(notifyTitle, message); err != nil {
		r.logger.WithError(err).Warn("Failed to send notification")
	}
}
