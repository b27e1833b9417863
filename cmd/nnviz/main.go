package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gurulost/neural-network-vizu/nn"
	"github.com/gurulost/neural-network-vizu/web"
)

func main() {
	log.SetFlags(0)
	addr := flag.String("addr", ":8080", "listen address")
	useAuth := flag.Bool("auth", false, "require login via basic auth + pam")
	realm := flag.String("realm", "nnviz", "basic auth realm")
	pamService := flag.String("pam", "", "pam service name for login checks")
	flag.StringVar(&web.AssetDir, "assets", web.AssetDir, "directory with templates and static files")
	flag.Parse()

	net := web.NewState()
	t, err := web.NewTemplates()
	nn.CheckErr(err)
	t.AddMenuItem(web.Link{Name: "network", Url: "/view"})
	t.AddMenuItem(web.Link{Name: "plots", Url: "/plots"})

	viewPage := web.NewViewPage(t.Clone(), net)
	plotPage := web.NewPlotPage(t.Clone(), net)

	r := mux.NewRouter()
	r.Handle("/", http.RedirectHandler("/view", http.StatusFound))
	r.PathPrefix("/static/").Handler(http.FileServer(http.Dir(web.AssetDir)))

	r.HandleFunc("/view", viewPage.Base())
	r.HandleFunc("/view/{opt:(?:reset|palette|float)}", viewPage.Setopt())
	r.HandleFunc("/net/diagram.svg", viewPage.Diagram())
	r.HandleFunc("/net/weights/{layer:[0-9]+}", viewPage.Heatmap())
	r.HandleFunc("/plots", plotPage.Base())
	r.HandleFunc("/ws", viewPage.Websocket())

	var handler http.Handler = r
	if *useAuth {
		handler = web.NewAuth(t, *realm, web.PamAuth(*pamService)).Middleware(r)
	}
	fmt.Println("serving web page at http://localhost" + *addr)
	nn.CheckErr(http.ListenAndServe(*addr, handler))
}
