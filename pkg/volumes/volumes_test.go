package volumes

import (
	"context"
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gb = 1024 * 1024 * 1024

func swapDisk(t *testing.T, os string, partitions []disk.PartitionStat, usage map[string]*disk.UsageStat) {
	t.Helper()
	origPartitions, origUsage, origGoos := diskPartitions, diskUsage, goos
	t.Cleanup(func() {
		diskPartitions, diskUsage, goos = origPartitions, origUsage, origGoos
	})
	goos = os
	diskPartitions = func(ctx context.Context, all bool) ([]disk.PartitionStat, error) {
		return partitions, nil
	}
	diskUsage = func(ctx context.Context, path string) (*disk.UsageStat, error) {
		if u, ok := usage[path]; ok {
			return u, nil
		}
		return nil, errors.New("device not ready")
	}
}

func TestList_Windows(t *testing.T) {
	swapDisk(t, "windows",
		[]disk.PartitionStat{
			{Device: "C:", Mountpoint: "C:", Fstype: "NTFS"},
			{Device: "D:", Mountpoint: "D:", Fstype: "CDFS"},
			{Device: "E:", Mountpoint: "E:", Fstype: "FAT32"},
		},
		map[string]*disk.UsageStat{
			`C:\`: {Total: 200*gb + 5, Free: 12*gb + gb/2},
			`E:\`: {Total: 8 * gb, Free: 1 * gb},
		})

	vols, err := List(context.Background())
	require.NoError(t, err)
	require.Len(t, vols, 2)
	assert.Equal(t, Volume{ID: "C", Root: `C:\`, Format: "NTFS", Total: 200*gb + 5, Free: 12*gb + gb/2}, vols[0])
	assert.Equal(t, `C:\ - NTFS - 12 GB free out of 200 GB`, vols[0].Label())
	assert.Equal(t, vols[0].Label(), vols[0].MenuLabel())
	assert.Equal(t, "E", vols[1].ID)
}

func TestList_Unix(t *testing.T) {
	swapDisk(t, "linux",
		[]disk.PartitionStat{
			{Device: "/dev/sdb1", Mountpoint: "/mnt/data", Fstype: "ext4"},
			{Device: "/dev/sda1", Mountpoint: "/", Fstype: "ext4"},
			{Device: "/dev/sda1", Mountpoint: "/", Fstype: "ext4"},
			{Device: "/dev/sdc1", Mountpoint: "/media/cd", Fstype: "iso9660"},
			{Device: "/dev/sda2", Mountpoint: "/boot", Fstype: "vfat"},
		},
		map[string]*disk.UsageStat{
			"/":         {Total: 100 * gb, Free: 40 * gb},
			"/boot":     {Total: gb, Free: gb / 2},
			"/mnt/data": {Total: 500 * gb, Free: 499 * gb},
		})

	vols, err := List(context.Background())
	require.NoError(t, err)
	require.Len(t, vols, 3)
	assert.Equal(t, "A", vols[0].ID)
	assert.Equal(t, "/", vols[0].Root)
	assert.Equal(t, "B", vols[1].ID)
	assert.Equal(t, "/boot", vols[1].Root)
	assert.Equal(t, "C", vols[2].ID)
	assert.Equal(t, "/mnt/data", vols[2].Root)
	assert.Equal(t, "/boot - vfat - 0 GB free out of 1 GB", vols[1].Label())
	assert.Equal(t, "[B] /boot - vfat - 0 GB free out of 1 GB", vols[1].MenuLabel())
}

func TestList_Error(t *testing.T) {
	orig := diskPartitions
	t.Cleanup(func() { diskPartitions = orig })
	diskPartitions = func(ctx context.Context, all bool) ([]disk.PartitionStat, error) {
		return nil, errors.New("no access")
	}
	_, err := List(context.Background())
	assert.ErrorContains(t, err, "no access")
}

func TestFind(t *testing.T) {
	vols := []Volume{{ID: "C", Root: `C:\`}, {ID: "D", Root: `D:\`}}
	v, ok := Find(vols, " d ")
	assert.True(t, ok)
	assert.Equal(t, `D:\`, v.Root)
	_, ok = Find(vols, "Z")
	assert.False(t, ok)
}

func TestIsLetter(t *testing.T) {
	for _, s := range []string{"a", "Z", "c"} {
		assert.True(t, IsLetter(s), s)
	}
	for _, s := range []string{"", "ab", "1", "é", ":"} {
		assert.False(t, IsLetter(s), s)
	}
	assert.Equal(t, `C:\`, DriveRoot("c"))
}
