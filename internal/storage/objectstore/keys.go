package objectstore

import (
	"fmt"
	"time"
)

const (
	keyPrefix     = "incidents"
	keyTimeLayout = "20060102_150405"
)

// PhotoKey is incidents/{id}/{YYYYMMDD_HHMMSS_micro}{ext}, timestamp in UTC.
// The microsecond suffix keeps photos of one request from sharing a key.
//
// Keys written by the earlier backend are incidents/{id}/{YYYYMMDD_HHMMSS}{ext}
// in server local time, with no suffix. Both forms share the
// incidents/{id}/{YYYYMMDD_HHMMSS} prefix. Code that rebuilds a key from a
// timestamp instead of reading photography.r2_key will not match old objects.
func PhotoKey(incidentID int64, t time.Time, ext string) string {
	t = t.UTC()
	return fmt.Sprintf("%s/%d/%s_%06d%s", keyPrefix, incidentID, t.Format(keyTimeLayout), t.Nanosecond()/1000, ext)
}

func MiniatureKey(incidentID int64) string {
	return fmt.Sprintf("%s/%d/miniature.jpg", keyPrefix, incidentID)
}
