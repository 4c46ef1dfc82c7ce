package cmd

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/arbitraryrw/folio/internal/logging"
)

var (
	hostAddrFlag    string
	hostTokenFlag   string
	hostOriginsFlag string
)

var hostCmd = &cobra.Command{
	Use:     "host",
	Short:   "Host the folio TUI in your browser",
	Long:    "Start a browser-accessible terminal session that runs `folio tui` over WebSocket.",
	GroupID: "folio",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := hostAddrFlag
		if addr == "" {
			addr = cfg.HostAddr
		}
		token, generated, err := ensureHostToken(hostTokenFlag)
		if err != nil {
			return err
		}
		origins := hostOriginsFlag
		if origins == "" {
			origins = os.Getenv("FOLIO_HOST_ALLOWED_ORIGINS")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "folio web host starting at %s\n", addr)
		fmt.Fprintf(cmd.OutOrStdout(), "open: %s\n", hostedAccessURL(addr, token))
		if generated {
			fmt.Fprintln(cmd.OutOrStdout(), "token was generated automatically for this run")
		}

		server := &http.Server{
			Addr:              addr,
			Handler:           hostRouter(token, parseAllowedOrigins(origins)),
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
		return server.ListenAndServe()
	},
}

func hostRouter(token string, allowed map[string]bool) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	authorized := func(c *gin.Context) {
		if !isHostAuthorized(c.Request, token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/", authorized, func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(hostedPageHTML))
	})
	r.GET("/ws", authorized, func(c *gin.Context) {
		up := websocket.Upgrader{
			ReadBufferSize:  8 * 1024,
			WriteBufferSize: 8 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return isHostOriginAllowed(r, allowed) },
		}
		serveHostedTTY(up, c.Writer, c.Request)
	})
	return r
}

type hostedWSMessage struct {
	Type string `json:"type"`
	Data string `json:"data,omitempty"`
	Cols uint16 `json:"cols,omitempty"`
	Rows uint16 `json:"rows,omitempty"`
}

func serveHostedTTY(up websocket.Upgrader, w http.ResponseWriter, r *http.Request) {
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		logging.Logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	// Wait briefly for the browser's size so the first frame is drawn at
	// the right dimensions.
	size := pty.Winsize{Cols: 120, Rows: 36}
	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			break
		}
		var msg hostedWSMessage
		if json.Unmarshal(payload, &msg) == nil && msg.Type == "resize" && msg.Cols > 0 && msg.Rows > 0 {
			size = pty.Winsize{Cols: msg.Cols, Rows: msg.Rows}
			break
		}
	}
	_ = conn.SetReadDeadline(time.Time{})

	exe, err := os.Executable()
	if err != nil || strings.TrimSpace(exe) == "" {
		exe = "folio"
	}
	child := exec.Command(exe, "tui")
	child.Env = append(os.Environ(), "FOLIO_TUI_MOUSE=1")

	ptmx, err := pty.StartWithSize(child, &size)
	if err != nil {
		logging.Logger.Error("starting hosted tui", "err", err)
		_ = conn.WriteMessage(websocket.TextMessage, []byte("\r\nfailed to start folio tui\r\n"))
		return
	}
	defer func() {
		_ = ptmx.Close()
		if child.Process != nil {
			_ = child.Process.Kill()
		}
		_ = child.Wait()
	}()
	logging.Logger.Info("hosted session started", "remote", r.RemoteAddr, "cols", size.Cols, "rows", size.Rows)

	done := make(chan struct{})
	go func() {
		defer close(done)
		buf := make([]byte, 8192)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				if werr := conn.WriteMessage(websocket.BinaryMessage, buf[:n]); werr != nil {
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		default:
		}

		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg hostedWSMessage
		if json.Unmarshal(payload, &msg) != nil {
			continue
		}
		switch msg.Type {
		case "input":
			if msg.Data != "" {
				_, _ = ptmx.Write([]byte(msg.Data))
			}
		case "resize":
			if msg.Cols > 0 && msg.Rows > 0 {
				_ = pty.Setsize(ptmx, &pty.Winsize{Cols: msg.Cols, Rows: msg.Rows})
			}
		}
	}
}

func ensureHostToken(flagValue string) (token string, generated bool, err error) {
	token = strings.TrimSpace(flagValue)
	if token == "" {
		token = strings.TrimSpace(os.Getenv("FOLIO_HOST_TOKEN"))
	}
	if token != "" {
		return token, false, nil
	}

	buf := make([]byte, 18)
	if _, err := rand.Read(buf); err != nil {
		return "", false, fmt.Errorf("failed to generate host token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), true, nil
}

func isHostAuthorized(r *http.Request, expected string) bool {
	if expected == "" {
		return true
	}
	got := hostRequestToken(r)
	if got == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(got)) == 1
}

func hostRequestToken(r *http.Request) string {
	if q := strings.TrimSpace(r.URL.Query().Get("token")); q != "" {
		return q
	}
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	const bearer = "bearer "
	if len(auth) >= len(bearer) && strings.EqualFold(auth[:len(bearer)], bearer) {
		return strings.TrimSpace(auth[len(bearer):])
	}
	return ""
}

// normalizeOrigin lowercases an http(s) origin and strips any path. Other
// schemes yield "".
func normalizeOrigin(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return ""
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return ""
	}
	return scheme + "://" + strings.ToLower(u.Host)
}

func parseAllowedOrigins(list string) map[string]bool {
	allowed := make(map[string]bool)
	for _, o := range strings.Split(list, ",") {
		if n := normalizeOrigin(o); n != "" {
			allowed[n] = true
		}
	}
	return allowed
}

// isHostOriginAllowed accepts same-origin upgrades and origins on the
// allowlist. Requests without an Origin header are rejected.
func isHostOriginAllowed(r *http.Request, allowed map[string]bool) bool {
	origin := normalizeOrigin(r.Header.Get("Origin"))
	if origin == "" {
		return false
	}
	if allowed[origin] {
		return true
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(p, ",")[0]))
	}
	return origin == scheme+"://"+strings.ToLower(r.Host)
}

func hostedAccessURL(addr, token string) string {
	u := "http://" + advertisedHost(addr)
	if token == "" {
		return u
	}
	return u + "/?token=" + url.QueryEscape(token)
}

func advertisedHost(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		if strings.HasPrefix(addr, ":") {
			return "127.0.0.1" + addr
		}
		if !strings.Contains(addr, ":") {
			return "127.0.0.1:" + addr
		}
		return addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, port)
}

const hostedPageHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width,initial-scale=1" />
  <title>Nik ~ Home</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/xterm@5.3.0/css/xterm.min.css" />
  <style>
    html, body { margin: 0; height: 100%; overflow: hidden; background: #0f172a; }
    #term { width: 100%; height: 100%; box-sizing: border-box; padding: 6px; }
    #term .xterm, #term .xterm-viewport { height: 100%; }
  </style>
</head>
<body>
  <div id="term"></div>
  <script src="https://cdn.jsdelivr.net/npm/xterm@5.3.0/lib/xterm.min.js"></script>
  <script src="https://cdn.jsdelivr.net/npm/xterm-addon-fit@0.8.0/lib/xterm-addon-fit.min.js"></script>
  <script>
    const token = new URLSearchParams(window.location.search).get("token") || "";
    const term = new Terminal({ cursorBlink: true, theme: { background: "#0f172a", foreground: "#e2e8f0" } });
    const fit = new FitAddon.FitAddon();
    term.loadAddon(fit);
    term.open(document.getElementById("term"));
    fit.fit();

    const proto = window.location.protocol === "https:" ? "wss" : "ws";
    const ws = new WebSocket(proto + "://" + window.location.host + "/ws?token=" + encodeURIComponent(token));
    ws.binaryType = "arraybuffer";
    const decoder = new TextDecoder();

    function resize() {
      fit.fit();
      if (ws.readyState === WebSocket.OPEN) {
        ws.send(JSON.stringify({ type: "resize", cols: term.cols, rows: term.rows }));
      }
    }
    ws.onopen = () => { resize(); term.focus(); };
    ws.onmessage = (event) => {
      if (typeof event.data === "string") { term.write(event.data); return; }
      const text = decoder.decode(event.data, { stream: true });
      if (text) term.write(text);
    };
    term.onData((data) => {
      if (ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify({ type: "input", data }));
    });
    window.addEventListener("resize", resize);
  </script>
</body>
</html>`

func init() {
	hostCmd.Flags().StringVar(&hostAddrFlag, "addr", "", "listen address for hosted TUI (default FOLIO_HOST_ADDR or 127.0.0.1:8787)")
	hostCmd.Flags().StringVar(&hostTokenFlag, "token", "", "access token for web host (or set FOLIO_HOST_TOKEN)")
	hostCmd.Flags().StringVar(&hostOriginsFlag, "allowed-origins", "", "comma-separated extra websocket origins (or set FOLIO_HOST_ALLOWED_ORIGINS)")
	rootCmd.AddCommand(hostCmd)
}
