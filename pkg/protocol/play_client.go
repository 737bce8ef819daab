package protocol

import (
	"bytes"

	"github.com/quartzmc/quartzd/pkg/codec"
)

// ClientKeepAlive is the client's echo of a previously sent keep-alive token.
type ClientKeepAlive struct {
	Token int32
}

func DecodeClientKeepAlive(data []byte) (ClientKeepAlive, error) {
	r := bytes.NewReader(data)
	token, err := codec.ReadVarInt(r)
	if err != nil {
		return ClientKeepAlive{}, err
	}
	return ClientKeepAlive{Token: token}, CheckFullyConsumed(r)
}

// ClientChatMessage is a raw chat line as typed by the client.
type ClientChatMessage struct {
	Message string
}

func DecodeClientChatMessage(data []byte) (ClientChatMessage, error) {
	r := bytes.NewReader(data)
	msg, err := codec.ReadString(r)
	if err != nil {
		return ClientChatMessage{}, err
	}
	return ClientChatMessage{Message: msg}, CheckFullyConsumed(r)
}

// Use-Entity mouse-action ids.
const (
	UseEntityInteract   = 0
	UseEntityAttack     = 1
	UseEntityInteractAt = 2
)

// ClientUseEntity is a right/left-click on another entity: Attack covers
// the minimal melee-combat case, Interact and InteractAt are accepted and
// ignored.
type ClientUseEntity struct {
	Target int32
	Type   int32
}

func DecodeClientUseEntity(data []byte) (ClientUseEntity, error) {
	r := bytes.NewReader(data)
	var p ClientUseEntity
	var err error
	if p.Target, err = codec.ReadVarInt(r); err != nil {
		return p, err
	}
	if p.Type, err = codec.ReadVarInt(r); err != nil {
		return p, err
	}
	if p.Type == UseEntityInteractAt {
		if _, err = codec.ReadFloat32(r); err != nil {
			return p, err
		}
		if _, err = codec.ReadFloat32(r); err != nil {
			return p, err
		}
		if _, err = codec.ReadFloat32(r); err != nil {
			return p, err
		}
	}
	return p, CheckFullyConsumed(r)
}

// ClientPlayer is the on-ground-only movement packet.
type ClientPlayer struct {
	OnGround bool
}

func DecodeClientPlayer(data []byte) (ClientPlayer, error) {
	r := bytes.NewReader(data)
	og, err := codec.ReadBool(r)
	if err != nil {
		return ClientPlayer{}, err
	}
	return ClientPlayer{OnGround: og}, CheckFullyConsumed(r)
}

// ClientPlayerPosition carries a position update with no look change.
type ClientPlayerPosition struct {
	X, Y, Z  float64
	OnGround bool
}

func DecodeClientPlayerPosition(data []byte) (ClientPlayerPosition, error) {
	r := bytes.NewReader(data)
	var p ClientPlayerPosition
	var err error
	if p.X, err = codec.ReadFloat64(r); err != nil {
		return p, err
	}
	if p.Y, err = codec.ReadFloat64(r); err != nil {
		return p, err
	}
	if p.Z, err = codec.ReadFloat64(r); err != nil {
		return p, err
	}
	if p.OnGround, err = codec.ReadBool(r); err != nil {
		return p, err
	}
	return p, CheckFullyConsumed(r)
}

// ClientPlayerLook carries a look update with no position change.
type ClientPlayerLook struct {
	Yaw, Pitch float32
	OnGround   bool
}

func DecodeClientPlayerLook(data []byte) (ClientPlayerLook, error) {
	r := bytes.NewReader(data)
	var p ClientPlayerLook
	var err error
	if p.Yaw, err = codec.ReadFloat32(r); err != nil {
		return p, err
	}
	if p.Pitch, err = codec.ReadFloat32(r); err != nil {
		return p, err
	}
	if p.OnGround, err = codec.ReadBool(r); err != nil {
		return p, err
	}
	return p, CheckFullyConsumed(r)
}

// ClientPlayerPositionAndLook carries a combined position and look update.
type ClientPlayerPositionAndLook struct {
	X, Y, Z    float64
	Yaw, Pitch float32
	OnGround   bool
}

func DecodeClientPlayerPositionAndLook(data []byte) (ClientPlayerPositionAndLook, error) {
	r := bytes.NewReader(data)
	var p ClientPlayerPositionAndLook
	var err error
	if p.X, err = codec.ReadFloat64(r); err != nil {
		return p, err
	}
	if p.Y, err = codec.ReadFloat64(r); err != nil {
		return p, err
	}
	if p.Z, err = codec.ReadFloat64(r); err != nil {
		return p, err
	}
	if p.Yaw, err = codec.ReadFloat32(r); err != nil {
		return p, err
	}
	if p.Pitch, err = codec.ReadFloat32(r); err != nil {
		return p, err
	}
	if p.OnGround, err = codec.ReadBool(r); err != nil {
		return p, err
	}
	return p, CheckFullyConsumed(r)
}

// ClientPlayerDigging is a start/cancel/finish digging action.
type ClientPlayerDigging struct {
	Status  byte
	X, Y, Z int32
	Face    byte
}

func DecodeClientPlayerDigging(data []byte) (ClientPlayerDigging, error) {
	r := bytes.NewReader(data)
	var p ClientPlayerDigging
	var err error
	if p.Status, err = codec.ReadUint8(r); err != nil {
		return p, err
	}
	if p.X, p.Y, p.Z, err = codec.ReadPosition(r); err != nil {
		return p, err
	}
	if p.Face, err = codec.ReadUint8(r); err != nil {
		return p, err
	}
	return p, CheckFullyConsumed(r)
}

// ClientPlayerBlockPlacement is a right-click block placement/use action.
type ClientPlayerBlockPlacement struct {
	X, Y, Z                   int32
	Face                      byte
	HeldItem                  Slot
	CursorX, CursorY, CursorZ byte
}

func DecodeClientPlayerBlockPlacement(data []byte) (ClientPlayerBlockPlacement, error) {
	r := bytes.NewReader(data)
	var p ClientPlayerBlockPlacement
	var err error
	if p.X, p.Y, p.Z, err = codec.ReadPosition(r); err != nil {
		return p, err
	}
	if p.Face, err = codec.ReadUint8(r); err != nil {
		return p, err
	}
	if p.HeldItem, err = ReadSlot(r); err != nil {
		return p, err
	}
	if p.CursorX, err = codec.ReadUint8(r); err != nil {
		return p, err
	}
	if p.CursorY, err = codec.ReadUint8(r); err != nil {
		return p, err
	}
	if p.CursorZ, err = codec.ReadUint8(r); err != nil {
		return p, err
	}
	return p, CheckFullyConsumed(r)
}

// Client-status action ids.
const ClientStatusRespawn = 0

// ClientClientStatus reports a client-side lifecycle action; 0 is "request
// respawn" after death, 1 is the stats-request achievement menu action.
type ClientClientStatus struct {
	Action int32
}

func DecodeClientClientStatus(data []byte) (ClientClientStatus, error) {
	r := bytes.NewReader(data)
	action, err := codec.ReadVarInt(r)
	if err != nil {
		return ClientClientStatus{}, err
	}
	return ClientClientStatus{Action: action}, CheckFullyConsumed(r)
}

// ClientEntityAction toggles a per-tick player state (sneak, sprint, ...).
type ClientEntityAction struct {
	EntityID  int32
	ActionID  int32
	JumpBoost int32
}

func DecodeClientEntityAction(data []byte) (ClientEntityAction, error) {
	r := bytes.NewReader(data)
	var p ClientEntityAction
	var err error
	if p.EntityID, err = codec.ReadVarInt(r); err != nil {
		return p, err
	}
	if p.ActionID, err = codec.ReadVarInt(r); err != nil {
		return p, err
	}
	if p.JumpBoost, err = codec.ReadVarInt(r); err != nil {
		return p, err
	}
	return p, CheckFullyConsumed(r)
}
