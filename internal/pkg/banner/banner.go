package banner

import (
	"fmt"
	"io"
	"runtime"

	"pallet-service/internal/pkg/version"
)

const banner = `
  ____       _ _      _     _    ____ ___
 |  _ \ __ _| | | ___| |_  / \  |  _ \_ _|
 | |_) / _' | | |/ _ \ __|/ _ \ | |_) | |
 |  __/ (_| | | |  __/ |_/ ___ \|  __/| |
 |_|   \__,_|_|_|\___|\__/_/   \_\_|  |___|
`

// Print 打印启动横幅，包含版本信息和构建信息
func Print(w io.Writer, info version.Info) {
	fmt.Fprint(w, banner)
	fmt.Fprintf(w, "  Version:     %s\n", info.Version)

	if info.Git.ShortHash != "" && info.Git.ShortHash != "unknown" {
		dirty := ""
		if info.Git.IsDirty {
			dirty = " (dirty)"
		}
		fmt.Fprintf(w, "  Commit:      %s%s\n", info.Git.ShortHash, dirty)
	}

	if info.BuildDate != "" && info.BuildDate != "unknown" {
		fmt.Fprintf(w, "  Build Time:  %s\n", info.BuildDate)
	}

	fmt.Fprintf(w, "  Go Version:  %s\n", runtime.Version())
	fmt.Fprintf(w, "  OS/Arch:     %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintln(w)
}
