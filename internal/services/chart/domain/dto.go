package domain

import (
	"encoding/json"
	"time"

	"gdpchart/internal/core/chart"
)

// ChartQuery overrides the configured projection for one request
// nil and empty fields keep the configured defaults
type ChartQuery struct {
	Layout  string   `json:"layout,omitempty" query:"layout" validate:"omitempty,oneof=index time" example:"index"`
	Money   string   `json:"money,omitempty" query:"money" validate:"omitempty,oneof=adaptive cents whole" example:"adaptive"`
	Width   *float64 `json:"width,omitempty" query:"width" validate:"omitempty,min=100,max=4000" example:"800"`
	Height  *float64 `json:"height,omitempty" query:"height" validate:"omitempty,min=100,max=4000" example:"450"`
	Padding *float64 `json:"padding,omitempty" query:"padding" validate:"omitempty,min=0,max=1000" example:"60"`
	From    string   `json:"from,omitempty" query:"from" validate:"omitempty,iso_date" example:"1990-01-01"`
	To      string   `json:"to,omitempty" query:"to" validate:"omitempty,iso_date" example:"2000-12-31"`
}

// CanvasInput is a caller supplied canvas
type CanvasInput struct {
	Width   float64 `json:"width" validate:"required,min=100,max=4000" example:"800"`
	Height  float64 `json:"height" validate:"required,min=100,max=4000" example:"600"`
	Padding float64 `json:"padding" validate:"min=0,max=1000" example:"60"`
}

// ProjectInput projects caller supplied data instead of the loaded dataset
// Data uses the document shape, a list of [date, value] pairs
type ProjectInput struct {
	Title  string            `json:"title,omitempty" validate:"omitempty,max=200" example:"US GDP"`
	Data   []json.RawMessage `json:"data" validate:"required,max=20000" swaggertype:"array,object"`
	Canvas *CanvasInput      `json:"canvas,omitempty"`
	Layout string            `json:"layout,omitempty" validate:"omitempty,oneof=index time" example:"time"`
	Money  string            `json:"money,omitempty" validate:"omitempty,oneof=adaptive cents whole" example:"cents"`
}

// AxisView is an axis with its ticks resolved
type AxisView struct {
	Orientation chart.Orientation `json:"orientation" example:"bottom"`
	Offset      float64           `json:"offset" example:"390"`
	Domain      [2]float64        `json:"domain"`
	Range       [2]float64        `json:"range"`
	Ticks       []chart.Tick      `json:"ticks"`
}

// AxesView pairs the two axes
type AxesView struct {
	Bottom AxisView `json:"bottom"`
	Left   AxisView `json:"left"`
}

// ChartView is the projected chart as served to clients
type ChartView struct {
	Title       string                `json:"title" example:"US GDP"`
	Description string                `json:"description,omitempty"`
	Source      string                `json:"source,omitempty" example:"Federal Reserve Economic Data"`
	Generation  string                `json:"generation,omitempty" example:"4a6f0c52-8f0e-4a35-9d7e-6f1d4f0e2a11"`
	Layout      chart.Layout          `json:"layout" swaggertype:"string" example:"index"`
	Money       chart.MoneyFormat     `json:"money" swaggertype:"string" example:"adaptive"`
	Canvas      chart.Canvas          `json:"canvas"`
	Domain      chart.Domain          `json:"domain"`
	Bars        []chart.BarDescriptor `json:"bars"`
	Axes        AxesView              `json:"axes"`
}

// FrameView is what a page can show before any chart exists
type FrameView struct {
	Title  string       `json:"title" example:"US GDP"`
	Canvas chart.Canvas `json:"canvas"`
}

// StateView reports the loader state
type StateView struct {
	State        StateKind  `json:"state" example:"ready"`
	Generation   string     `json:"generation,omitempty" example:"4a6f0c52-8f0e-4a35-9d7e-6f1d4f0e2a11"`
	Since        *time.Time `json:"since,omitempty"`
	Error        string     `json:"error,omitempty" example:"Request failed with errorCode: 404"`
	Observations int        `json:"observations,omitempty" example:"275"`
}

// ReloadView acknowledges a started generation
type ReloadView struct {
	Generation string `json:"generation" example:"4a6f0c52-8f0e-4a35-9d7e-6f1d4f0e2a11"`
}
