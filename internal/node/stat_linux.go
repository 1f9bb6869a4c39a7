//go:build linux

package node

import (
	"syscall"
	"time"
)

func (n *Node) sys() (*syscall.Stat_t, bool) {
	if n.Info == nil {
		return nil, false
	}
	st, ok := n.Info.Sys().(*syscall.Stat_t)
	return st, ok
}

// Inode returns the inode number, zero for broken nodes.
func (n *Node) Inode() uint64 {
	if st, ok := n.sys(); ok {
		return st.Ino
	}
	return 0
}

// NLinks returns the hard-link count, zero for broken nodes.
func (n *Node) NLinks() uint64 {
	if st, ok := n.sys(); ok {
		return uint64(st.Nlink)
	}
	return 0
}

// Owner returns the numeric uid and gid of the node.
func (n *Node) Owner() (uid, gid uint32, ok bool) {
	st, ok := n.sys()
	if !ok {
		return 0, 0, false
	}
	return st.Uid, st.Gid, true
}

// AccessTime returns the last access time.
func (n *Node) AccessTime() time.Time {
	if st, ok := n.sys(); ok {
		return time.Unix(st.Atim.Sec, st.Atim.Nsec)
	}
	return time.Time{}
}

// ChangeTime returns the inode change time.
func (n *Node) ChangeTime() time.Time {
	if st, ok := n.sys(); ok {
		return time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	}
	return time.Time{}
}
