//go:build !linux

package node

import "time"

// Inode returns zero on platforms without native stat support.
func (n *Node) Inode() uint64 { return 0 }

// NLinks returns zero on platforms without native stat support.
func (n *Node) NLinks() uint64 { return 0 }

// Owner reports no ownership data on platforms without native stat
// support.
func (n *Node) Owner() (uid, gid uint32, ok bool) { return 0, 0, false }

// AccessTime falls back to the modification time.
func (n *Node) AccessTime() time.Time { return n.ModTime() }

// ChangeTime falls back to the modification time.
func (n *Node) ChangeTime() time.Time { return n.ModTime() }
