// Package api 處理 HTTP 請求路由和處理。
//
// 這個包組裝 gin engine、中間件與各資源的 handlers（在 handlers 子包）。
// 它負責將 HTTP 請求轉換為適當的服務調用，並將結果轉換回 HTTP 響應。
package api
