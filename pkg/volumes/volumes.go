// Package volumes enumerates mounted storage volumes.
package volumes

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/filetug/voltug/pkg/fsutils"
	"github.com/filetug/voltug/pkg/logging"
	"github.com/shirou/gopsutil/v3/disk"
	"go.uber.org/zap"
)

// Volume is a read-only snapshot of a mounted volume.
type Volume struct {
	ID     string // single upper case letter
	Root   string
	Format string
	Total  uint64
	Free   uint64
}

// Label formats the volume the way the volume menu shows it,
// e.g. `C:\ - NTFS - 12 GB free out of 200 GB`.
func (v Volume) Label() string {
	return fmt.Sprintf("%s - %s - %d GB free out of %d GB",
		v.Root, v.Format, fsutils.GigabytesFloor(v.Free), fsutils.GigabytesFloor(v.Total))
}

// MenuLabel is Label prefixed with the letter when the root does not carry it.
func (v Volume) MenuLabel() string {
	if strings.HasPrefix(v.Root, v.ID+":") {
		return v.Label()
	}
	return fmt.Sprintf("[%s] %s", v.ID, v.Label())
}

var (
	diskPartitions = disk.PartitionsWithContext
	diskUsage      = disk.UsageWithContext
	goos           = runtime.GOOS
)

// List enumerates volumes. Partitions whose usage can not be read are skipped.
func List(ctx context.Context) ([]Volume, error) {
	partitions, err := diskPartitions(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate partitions: %w", err)
	}
	log := logging.Named("volumes")
	windows := goos == "windows"
	if !windows {
		sort.Slice(partitions, func(i, j int) bool {
			return partitions[i].Mountpoint < partitions[j].Mountpoint
		})
	}
	volumes := make([]Volume, 0, len(partitions))
	seen := make(map[string]bool, len(partitions))
	for _, p := range partitions {
		if seen[p.Mountpoint] {
			continue
		}
		seen[p.Mountpoint] = true
		v := Volume{Root: p.Mountpoint, Format: p.Fstype}
		if windows {
			letter := strings.ToUpper(strings.TrimSuffix(strings.TrimSuffix(p.Mountpoint, `\`), ":"))
			if !IsLetter(letter) {
				continue
			}
			v.ID = letter
			v.Root = DriveRoot(letter)
		} else {
			if len(volumes) >= 26 {
				log.Warn("more than 26 volumes, skipping", zap.String("mountpoint", p.Mountpoint))
				continue
			}
			v.ID = string(rune('A' + len(volumes)))
		}
		usage, err := diskUsage(ctx, v.Root)
		if err != nil {
			log.Warn("skipping volume", zap.String("root", v.Root), zap.Error(err))
			continue
		}
		v.Total = usage.Total
		v.Free = usage.Free
		volumes = append(volumes, v)
	}
	return volumes, nil
}

// Find returns the volume with the given letter, case-insensitive.
func Find(vols []Volume, letter string) (Volume, bool) {
	letter = strings.ToUpper(strings.TrimSpace(letter))
	for _, v := range vols {
		if v.ID == letter {
			return v, true
		}
	}
	return Volume{}, false
}

// IsLetter reports whether s is exactly one ASCII letter.
func IsLetter(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// DriveRoot returns the Windows root of a drive letter, e.g. `C:\`.
func DriveRoot(letter string) string {
	return strings.ToUpper(letter) + `:\`
}
