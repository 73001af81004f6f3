package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tommy251/Atlas2.0/app/repositories"
	"github.com/tommy251/Atlas2.0/app/routes"
	"github.com/tommy251/Atlas2.0/app/services"
	"github.com/tommy251/Atlas2.0/internal/server"
	"github.com/tommy251/Atlas2.0/pkg/router"
)

// atlas serve — start the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// atlas route:list — print all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		stores := repositories.NewMemoryStores()
		catalog := services.NewCatalogService(stores.Products)
		authn := services.NewAuthService(stores.Users)

		r := router.New()
		routes.RegisterAPI(r, routes.Deps{
			Catalog:  catalog,
			Cart:     services.NewCartService(stores.Cart, stores.Products),
			Wishlist: services.NewWishlistService(stores.Wishlist, stores.Products),
			Auth:     authn,
			Checkout: services.NewCheckoutService(stores.Orders, authn),
			Contact:  services.NewContactService(stores.Contact),
		})

		infos := r.Routes()
		if len(infos) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
