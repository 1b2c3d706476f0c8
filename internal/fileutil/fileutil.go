package fileutil

import "os"

// ReadableByAll is the file permission mode for written path-list
// files, which carry no secrets and are meant for other tools to read.
const ReadableByAll os.FileMode = 0o644
