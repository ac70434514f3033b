package yt

import "context"

// Interface est l'abstraction du téléchargeur externe utilisée par l'application.
// Elle facilite le test en autorisant une implémentation factice.
type Interface interface {
	CheckBinary() error
	GetVersion(ctx context.Context) (string, error)
	DownloadSubtitles(ctx context.Context, req Request) (*DownloadReport, error)
}
