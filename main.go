// main.go
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"sanmei/app/calendar"
	frontendRouter "sanmei/app/frontend/router"
	"sanmei/app/sanmei"
	"sanmei/config"
	ml "sanmei/middleware"
	"sanmei/util"
)

// CGO_ENABLED=0 GOOS=linux GOARCH=amd64 go build -o sanmei-serv main.go
func main() {
	if err := newApp().Run(os.Args); err != nil {
		ml.Log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "sanmei",
		Usage: "算命学 命式 / 相性 计算",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "配置文件路径"},
			&cli.BoolFlag{Name: "verbose", Usage: "输出 debug 日志"},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "启动 HTTP 服务",
				Action: serve,
			},
			{
				Name:      "chart",
				Usage:     "计算命式",
				ArgsUsage: "YYYY-MM-DD",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "transform", Usage: "日干按干合化气"},
				},
				Action: chart,
			},
			{
				Name:      "compat",
				Usage:     "计算两人相性",
				ArgsUsage: "YYYY-MM-DD YYYY-MM-DD",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "transform", Usage: "两人的日干都按干合化气"},
				},
				Action: compatibility,
			},
			{
				Name:  "terms",
				Usage: "列出节入表",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "from", Value: calendar.MinYear},
					&cli.IntFlag{Name: "to", Value: calendar.MaxYear},
					&cli.IntFlag{Name: "month", Usage: "只列出某个月的节"},
				},
				Action: terms,
			},
		},
	}
}

func setup(c *cli.Context) error {
	if file := c.String("config"); file != "" {
		cfg, err := config.Load(file)
		if err != nil {
			return err
		}
		config.Set(cfg)
	}
	cfg := config.Get()

	level := logrus.InfoLevel
	if c.Bool("verbose") {
		level = logrus.DebugLevel
	}
	if err := ml.Setup(cfg.Env.Log, level); err != nil {
		return err
	}
	ml.SetDefaultLanguage(cfg.I18n.Default)
	return nil
}

func serve(c *cli.Context) error {
	cfg := config.Get()
	gin.SetMode(cfg.Env.Mode)
	r := gin.Default()

	// 加载前台模块路由
	frontendRouter.Load(r.Group("/api/v1"))

	ml.Log.Infof("sanmei listening on :%s", cfg.Http.Port)
	return r.Run(fmt.Sprintf(":%s", cfg.Http.Port))
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func chart(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: sanmei chart YYYY-MM-DD", 2)
	}
	d, err := util.ParseDate(c.Args().First())
	if err != nil {
		return err
	}
	res, err := sanmei.Get().Destiny(d, c.Bool("transform") || sanmei.Get().Options().Transform)
	if err != nil {
		return err
	}
	if err := printJSON(res); err != nil {
		return err
	}
	fmt.Println(sanmei.ShareText(res))
	return nil
}

func compatibility(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("usage: sanmei compat YYYY-MM-DD YYYY-MM-DD", 2)
	}
	d1, err := util.ParseDate(c.Args().Get(0))
	if err != nil {
		return err
	}
	d2, err := util.ParseDate(c.Args().Get(1))
	if err != nil {
		return err
	}
	res, err := sanmei.Get().Compatibility(d1, d2, c.Bool("transform"))
	if err != nil {
		return err
	}
	if err := printJSON(res); err != nil {
		return err
	}
	fmt.Println(sanmei.CompatibilityShareText(res))
	return nil
}

func terms(c *cli.Context) error {
	w := c.App.Writer
	if m := c.Int("month"); m != 0 {
		name, err := calendar.TermName(m)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, name)
		for _, yt := range calendar.Years(c.Int("from"), c.Int("to")) {
			fmt.Fprintf(w, "%d %02d/%02d\n", yt.Year, m, yt.Terms[m-1].Day)
		}
		return nil
	}
	for _, yt := range calendar.Years(c.Int("from"), c.Int("to")) {
		fmt.Fprintf(w, "%d", yt.Year)
		for _, t := range yt.Terms {
			fmt.Fprintf(w, " %s:%02d/%02d", t.Name, t.Month, t.Day)
		}
		fmt.Fprintln(w)
	}
	return nil
}
