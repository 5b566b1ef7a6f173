package main

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed public
var publicFS embed.FS

// GetPageFS 获取首页静态文件系统
func GetPageFS() http.FileSystem {
	sub, err := fs.Sub(publicFS, "public")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
