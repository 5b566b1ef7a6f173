// Command addpallet 向 palletes_scan 表写入一条扫描记录，用于准备测试数据。
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"pallet-service/internal/config"
	"pallet-service/internal/pkg/database"
	"pallet-service/internal/service"
)

func main() {
	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatalf("写入扫描记录失败: %v", err)
	}
}

func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "addpallet",
		Usage: "Insert one record into 'palletes_scan' table",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "sscc",
				Value: service.DefaultSSCC,
				Usage: "SSCC value",
			},
			&cli.StringFlag{
				Name:  "status",
				Value: service.DefaultScanStatus,
				Usage: "Status value",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "sqlite 数据库文件路径",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}
			if v := cmd.String("db"); v != "" {
				cfg.Database.Path = v
			}

			// 确保表存在
			db, err := database.Setup(cfg.Database)
			if err != nil {
				return err
			}
			defer database.Close(db)

			sscc, status := cmd.String("sscc"), cmd.String("status")
			id, err := service.NewScanService(db).AddScan(ctx, sscc, status)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Inserted into palletes_scan with id=%d, SSCC=%s, Status=%s\n", id, sscc, status)
			return nil
		},
	}
}
