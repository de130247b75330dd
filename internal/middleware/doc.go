// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 這個包包含安全標頭、CORS、IP 限流、請求逾時與 Prometheus 指標等
// 跨請求的功能。請求日誌與 panic 復原由 gin-contrib/zap 負責。
package middleware
