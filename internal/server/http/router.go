package httpserver

import (
	"net/http"

	"shogi/internal/server/game"
)

// Server 把 API 路由和静态页面拼成一个完整的 http.Handler，
// 本地命令行和移动端封装共用一套。
type Server struct {
	mux *http.ServeMux
}

func NewServer(games *game.Manager, webDir string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/api/", NewHandler(games))
	RegisterStaticRoutes(mux, webDir)
	return &Server{mux: mux}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
