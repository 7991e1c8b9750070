package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/rl1809/tableside/internal/adapter/handler/tableapi"
)

// Drives one diner visit against a running server over gRPC.
func main() {
	addr := flag.String("addr", "localhost:50051", "gRPC address of the kiosk server")
	table := flag.String("table", "5", "table number to enter manually")
	flag.Parse()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer conn.Close()

	client := tableapi.NewTableServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sess, err := client.Identify(ctx, &tableapi.IdentifyRequest{Method: tableapi.MethodManual, Number: *table})
	if err != nil {
		log.Fatalf("identify: %v", err)
	}
	fmt.Printf("seated at %s\n", sess.TableID)

	cats, err := client.ListCategories(ctx)
	if err != nil {
		log.Fatalf("list categories: %v", err)
	}

	// First item of each category, pizza twice
	for _, cat := range cats.Categories {
		items, err := client.ListItems(ctx, &tableapi.ListItemsRequest{Category: cat})
		if err != nil {
			log.Fatalf("list %s: %v", cat, err)
		}
		if len(items.Items) == 0 {
			continue
		}
		item := items.Items[0]
		if sess, err = client.AddItem(ctx, &tableapi.ItemRequest{ItemID: item.ID}); err != nil {
			log.Fatalf("add %s: %v", item.ID, err)
		}
		if cat == "Pizza" {
			sess, err = client.SetQuantity(ctx, &tableapi.SetQuantityRequest{ItemID: item.ID, Quantity: 2})
			if err != nil {
				log.Fatalf("set quantity %s: %v", item.ID, err)
			}
		}
		fmt.Printf("  + %-28s %6s\n", item.Name, item.Price)
	}

	// Changed our mind about the drinks
	for _, line := range sess.Lines {
		if line.Item.Category == "Bevande" {
			if sess, err = client.DeleteItem(ctx, &tableapi.ItemRequest{ItemID: line.Item.ID}); err != nil {
				log.Fatalf("delete %s: %v", line.Item.ID, err)
			}
		}
	}

	fmt.Printf("cart: %d items, subtotal %s, service %s, total %s\n",
		sess.Totals.ItemCount, sess.Totals.Subtotal, sess.Totals.ServiceFee, sess.Totals.Total)

	reply, err := client.Checkout(ctx)
	if err != nil {
		log.Fatalf("checkout: %v", err)
	}

	r := reply.Receipt
	fmt.Printf("\nreceipt %s (%s) %s\n", r.ID, r.TableID, r.PlacedAt.Format(time.Kitchen))
	for _, l := range r.Lines {
		fmt.Printf("  %dx %-26s %8s\n", l.Quantity, l.Item.Name, l.LineTotal)
	}
	fmt.Printf("  %-29s %8s\n", "Subtotal", r.Totals.Subtotal)
	fmt.Printf("  %-29s %8s\n", "Service", r.Totals.ServiceFee)
	fmt.Printf("  %-29s %8s\n", "Total", r.Totals.Total)
}
