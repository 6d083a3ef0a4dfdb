// Package webkit renders surfaces with WebKitGTK on Linux.
//
// Each surface is a WebKitWebView hosted in its own undecorated GTK toplevel.
// The toplevel is given a unique title, located on the X server by that title
// and reparented into the host's window. All GTK calls happen on the thread
// that initialized GTK; the dispatch Runner guarantees it.
package webkit
