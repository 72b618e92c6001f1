package sanmei

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"sanmei/app/calendar"
	"sanmei/app/common"
	"sanmei/app/model"
	engine "sanmei/app/sanmei"
	"sanmei/app/star"
	ml "sanmei/middleware"
	"sanmei/util"
)

func language(c *gin.Context) string {
	return c.GetHeader(common.HEADER_LANGUAGE)
}

// 计算错误转成返回码，日期超出节入表单独提示
func failCode(c *gin.Context, err error, code string) string {
	if errors.Is(err, calendar.ErrYearOutOfRange) {
		return common.CODE_ERR_DATE_RANGE
	}
	ml.Log.WithField("request_id", c.GetString(common.CTX_REQUEST_ID)).Errorf("%+v", err)
	return code
}

// Destiny 命式
func Destiny(c *gin.Context) {
	lang := language(c)
	var q model.DestinyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusOK, ml.Fail(lang, common.CODE_ERR_PARAM))
		return
	}
	d, err := util.ParseDate(q.Date)
	if err != nil {
		c.JSON(http.StatusOK, ml.Fail(lang, common.CODE_ERR_DATE))
		return
	}

	e := engine.Get()
	transform := e.Options().Transform
	if q.Transform != nil {
		transform = *q.Transform
	}
	res, err := e.Destiny(d, transform)
	if err != nil {
		c.JSON(http.StatusOK, ml.Fail(lang, failCode(c, err, common.CODE_ERR_CHART)))
		return
	}

	opts := e.Options()
	opts.Transform = transform
	c.JSON(http.StatusOK, ml.Succ(lang, model.DestinyView{
		Date:    d,
		DayStem: star.DayStemInfoOf(res.DayStem),
		Options: opts,
		Result:  res,
	}))
}

func parsePair(c *gin.Context) (model.CompatibilityView, string) {
	var q model.CompatibilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return model.CompatibilityView{}, common.CODE_ERR_PARAM
	}
	d1, err := util.ParseDate(q.Date1)
	if err != nil {
		return model.CompatibilityView{}, common.CODE_ERR_DATE
	}
	d2, err := util.ParseDate(q.Date2)
	if err != nil {
		return model.CompatibilityView{}, common.CODE_ERR_DATE
	}
	return model.CompatibilityView{Date1: d1, Date2: d2, Transform: q.Transform}, ""
}

// Compatibility 两人相性
func Compatibility(c *gin.Context) {
	lang := language(c)
	view, code := parsePair(c)
	if code != "" {
		c.JSON(http.StatusOK, ml.Fail(lang, code))
		return
	}

	res, err := engine.Get().Compatibility(view.Date1, view.Date2, view.Transform)
	if err != nil {
		c.JSON(http.StatusOK, ml.Fail(lang, failCode(c, err, common.CODE_ERR_COMPAT)))
		return
	}
	view.Result = res
	c.JSON(http.StatusOK, ml.Succ(lang, view))
}

// Share 分享文案，不化气
func Share(c *gin.Context) {
	lang := language(c)
	d, err := util.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusOK, ml.Fail(lang, common.CODE_ERR_DATE))
		return
	}
	res, err := engine.Get().Destiny(d, false)
	if err != nil {
		c.JSON(http.StatusOK, ml.Fail(lang, failCode(c, err, common.CODE_ERR_CHART)))
		return
	}
	c.JSON(http.StatusOK, ml.Succ(lang, model.ShareView{Text: engine.ShareText(res)}))
}

func ShareCompatibility(c *gin.Context) {
	lang := language(c)
	view, code := parsePair(c)
	if code != "" {
		c.JSON(http.StatusOK, ml.Fail(lang, code))
		return
	}
	res, err := engine.Get().Compatibility(view.Date1, view.Date2, view.Transform)
	if err != nil {
		c.JSON(http.StatusOK, ml.Fail(lang, failCode(c, err, common.CODE_ERR_COMPAT)))
		return
	}
	c.JSON(http.StatusOK, ml.Succ(lang, model.ShareView{Text: engine.CompatibilityShareText(res)}))
}

func Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, ml.Succ(language(c), model.NewCatalogView()))
}

// SolarTerms 节入表分页
func SolarTerms(c *gin.Context) {
	lang := language(c)
	first, last := calendar.Range()
	page := util.NewPageWithStr(c.Query("page_no"), c.Query("page_size")).SetTotal(int64(last - first + 1))
	from := first + page.Offset()
	to := first + page.End() - 1
	years := calendar.Years(from, to)
	if years == nil {
		years = []calendar.YearTerms{}
	}
	page.Result = years
	c.JSON(http.StatusOK, ml.Succ(lang, page))
}
