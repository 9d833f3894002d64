package common

import (
	"flag"
	"time"
)

var Version = "v0.1.0"
var StartTime = time.Now().Unix()

var SQLitePath = "standards.db"
var UploadPath = "uploads"

// AdminPassword is the shared secret for the admin gate. AdminPasswordHash, when set,
// takes precedence and is compared with bcrypt instead.
var AdminPassword = ""
var AdminPasswordHash = ""

// SessionTTL is the admin session lifetime. Zero means sessions never expire.
var SessionTTL time.Duration = 0

var (
	Port          = flag.Int("port", 5000, "the listening port")
	PrintVersion  = flag.Bool("version", false, "print version and exit")
	PrintHelpFlag = flag.Bool("help", false, "print help and exit")
	LogDir        = flag.String("log-dir", "", "specify the log directory")
)

func PrintHelp() {
	println("Standards Hub " + Version)
	println("Usage: standards-hub [--port <port>] [--log-dir <log dir>] [--version] [--help]")
}

// AllowedUploadExtensions is the document-type allow-list for uploads.
var AllowedUploadExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}
