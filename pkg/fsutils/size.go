package fsutils

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var sizePrinter = message.NewPrinter(language.English)

var shortUnits = []string{"KB", "MB", "GB", "TB"}

// GetSizeShortText rounds size to the nearest whole unit, e.g. "2MB".
// TB is the largest unit.
func GetSizeShortText(size int64) string {
	if size < 1024 {
		return strconv.FormatInt(size, 10) + "B"
	}
	unit, div := 0, int64(1024)
	for unit < len(shortUnits)-1 && (size+div/2)/div >= 1024 {
		div *= 1024
		unit++
	}
	return strconv.FormatInt((size+div/2)/div, 10) + shortUnits[unit]
}

// GetSizeKBText returns size in whole kilobytes with digit grouping, e.g. "1,205 KB".
// Integer division truncates.
func GetSizeKBText(size int64) string {
	return sizePrinter.Sprintf("%d KB", size/1024)
}

// GigabytesFloor returns size in whole gigabytes, truncated.
func GigabytesFloor(size uint64) uint64 {
	return size / (1024 * 1024 * 1024)
}
