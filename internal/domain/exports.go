package domain

import (
	interfaces "arviewer/internal/domain/interfaces"
	types "arviewer/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ARButtonsKind     = types.ARButtonsKind
	ARButtonsMode     = types.ARButtonsMode
	SessionParams     = types.SessionParams
	CommodityEntry    = types.CommodityEntry
	CommodityIndex    = types.CommodityIndex
	ModelDescriptor   = types.ModelDescriptor
	ModelListDocument = types.ModelListDocument
	SlotState         = types.SlotState
	SheetConfig       = types.SheetConfig
	TextOptions       = types.TextOptions
	Bundle            = types.Bundle
	Transform         = types.Transform
	HitTestResult     = types.HitTestResult
	HitTestState      = types.HitTestState
	ARState           = types.ARState
	EventKind         = types.EventKind
	Event             = types.Event
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	DocumentFetcher = interfaces.DocumentFetcher
	SceneGraph      = interfaces.SceneGraph
	ModelDecoder    = interfaces.ModelDecoder
	ModelSource     = interfaces.ModelSource
	ReferenceSpace  = interfaces.ReferenceSpace
	HitTestSource   = interfaces.HitTestSource
	XRSession       = interfaces.XRSession
	XRFrame         = interfaces.XRFrame
	Presenter       = interfaces.Presenter
)

const (
	SingleOnly = types.SingleOnly
	Dynamic    = types.Dynamic
	Fixed      = types.Fixed

	Unloaded = types.Unloaded
	Loaded   = types.Loaded
	Failed   = types.Failed

	Idle             = types.Idle
	ReticleSearching = types.ReticleSearching
	ReticleLocked    = types.ReticleLocked
	ModelPlaced      = types.ModelPlaced

	EventReticleLocked = types.EventReticleLocked
	EventReticleLost   = types.EventReticleLost
	EventReticleReady  = types.EventReticleReady
	EventModelPlaced   = types.EventModelPlaced
	EventModelRemoved  = types.EventModelRemoved
	EventModelSwitched = types.EventModelSwitched
	EventLoadFailed    = types.EventLoadFailed
	EventSessionEnded  = types.EventSessionEnded

	ReferenceSpaceViewer = types.ReferenceSpaceViewer
)

var (
	DynamicButtons    = types.DynamicButtons
	FixedButtons      = types.FixedButtons
	SingleButton      = types.SingleButton
	ButtonKey         = types.ButtonKey
	IdentityTransform = types.IdentityTransform
)
