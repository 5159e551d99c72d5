package middleware

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_interface"
)

type cachedWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cachedWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

// ResponseCache GET 响应整体缓存，键为请求完整 URI
// 缓存层故障只记录日志，请求照常回源
func ResponseCache(cache stream_interface.Cache, ttl time.Duration) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodGet {
			ctx.Next()
			return
		}

		key := "response:" + ctx.Request.URL.RequestURI()
		cached, found, err := cache.Get(ctx.Request.Context(), key)
		if err != nil {
			log.Printf("response cache read failed for %s: %v", key, err)
		}
		if found {
			ctx.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			ctx.Abort()
			return
		}

		writer := &cachedWriter{ResponseWriter: ctx.Writer, body: &bytes.Buffer{}}
		ctx.Writer = writer
		ctx.Next()

		if writer.Status() == http.StatusOK {
			if err := cache.Set(ctx.Request.Context(), key, writer.body.String(), ttl); err != nil {
				log.Printf("response cache write failed for %s: %v", key, err)
			}
		}
	}
}
