// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"

	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/giveaway/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type SignupReq struct {
	Email string `json:"email"`
}

type SignupResp struct {
	Id int64 `json:"id"`
}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/giveaway/signup", ginx.B[SignupReq](h.Signup))
}

func (h *Handler) Signup(ctx *ginx.Context, req SignupReq) (ginx.Result, error) {
	id, err := h.svc.Signup(ctx, req.Email)
	switch {
	case errors.Is(err, service.ErrInvalidEmail):
		return invalidEmailResult, nil
	case errors.Is(err, service.ErrEntryDuplicate):
		return alreadyRegisteredResult, nil
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{
			Data: SignupResp{Id: id},
		}, nil
	}
}
