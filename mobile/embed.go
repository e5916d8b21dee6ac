//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// mobile/data/stage.yaml 是根目录 data/stage.yaml 的副本，修改配置时两处需同步。
package mobile

import "embed"

//go:embed data/stage.yaml
var dataFS embed.FS
