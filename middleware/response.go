package ml

import (
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"sanmei/app/common"
)

// Response 统一返回结构
type Response struct {
	Code string      `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

var messages = map[language.Tag][]*i18n.Message{
	language.Japanese: {
		{ID: common.CODE_SUCCESS, Other: "成功"},
		{ID: common.CODE_ERR_UNKNOWN, Other: "不明なエラーが発生しました"},
		{ID: common.CODE_ERR_PARAM, Other: "パラメータが正しくありません"},
		{ID: common.CODE_ERR_DATE, Other: "日付は YYYY-MM-DD 形式で入力してください"},
		{ID: common.CODE_ERR_DATE_RANGE, Other: "対応していない日付です（1900年〜2100年）"},
		{ID: common.CODE_ERR_CHART, Other: "命式を計算できませんでした"},
		{ID: common.CODE_ERR_COMPAT, Other: "相性を計算できませんでした"},
		{ID: common.CODE_ERR_LAN, Other: "対応していない言語です"},
	},
	language.Chinese: {
		{ID: common.CODE_SUCCESS, Other: "成功"},
		{ID: common.CODE_ERR_UNKNOWN, Other: "未知错误"},
		{ID: common.CODE_ERR_PARAM, Other: "参数错误"},
		{ID: common.CODE_ERR_DATE, Other: "日期格式应为 YYYY-MM-DD"},
		{ID: common.CODE_ERR_DATE_RANGE, Other: "日期超出支持范围（1900-2100年）"},
		{ID: common.CODE_ERR_CHART, Other: "命式计算失败"},
		{ID: common.CODE_ERR_COMPAT, Other: "相性计算失败"},
		{ID: common.CODE_ERR_LAN, Other: "不支持的语言"},
	},
	language.English: {
		{ID: common.CODE_SUCCESS, Other: "success"},
		{ID: common.CODE_ERR_UNKNOWN, Other: "unknown error"},
		{ID: common.CODE_ERR_PARAM, Other: "invalid parameter"},
		{ID: common.CODE_ERR_DATE, Other: "date must be formatted as YYYY-MM-DD"},
		{ID: common.CODE_ERR_DATE_RANGE, Other: "date is outside the supported range (1900-2100)"},
		{ID: common.CODE_ERR_CHART, Other: "failed to derive the chart"},
		{ID: common.CODE_ERR_COMPAT, Other: "failed to compute compatibility"},
		{ID: common.CODE_ERR_LAN, Other: "unsupported language"},
	},
}

var (
	bundle     *i18n.Bundle
	bundleOnce sync.Once
	defaultLan = common.DEFAULT_LANGUAGE
)

func getBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.Japanese)
		for tag, msgs := range messages {
			if err := bundle.AddMessages(tag, msgs...); err != nil {
				panic(err)
			}
		}
	})
	return bundle
}

// SetDefaultLanguage 请求头没带语言时使用
func SetDefaultLanguage(lan string) {
	if lan != "" {
		defaultLan = lan
	}
}

// Message 按语言取返回码对应的文案，找不到时返回码本身
func Message(lang, code string) string {
	loc := i18n.NewLocalizer(getBundle(), lang, defaultLan)
	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: code})
	if err != nil {
		Log.WithField("code", code).Warnf("i18n: %v", err)
		return code
	}
	return msg
}

func Succ(lang string, data interface{}) Response {
	return Response{Code: common.CODE_SUCCESS, Msg: Message(lang, common.CODE_SUCCESS), Data: data}
}

func Fail(lang, code string) Response {
	return Response{Code: code, Msg: Message(lang, code), Data: nil}
}
