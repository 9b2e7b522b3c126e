//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// embed 只能引用本目录下的文件，构建前需要先复制配置：
//
//	mkdir -p mobile/data && cp data/range.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/range.yaml
var dataFS embed.FS
