// Package ecs 提供最小的实体-组件存储
//
// 模拟场景中的实体很少（液体网格、画笔、HUD），
// 但沿用实体-组件-系统的划分：组件只保存数据，系统持有逻辑。
package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符，0 保留为无效 ID
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 每个实体每种组件类型最多持有一个实例，组件类型以 reflect.Type 区分，
// 因此 *T 与 T 是不同的组件类型。
type EntityManager struct {
	nextID     uint64
	components map[EntityID]map[reflect.Type]any
	// 待删除的实体，RemoveMarkedEntities 时统一清理
	toDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]map[reflect.Type]any),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// Exists 实体是否存在（已标记删除但尚未清理的实体仍然存在）
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.toDestroy = append(em.toDestroy, id)
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.toDestroy {
		delete(em.components, id)
	}
	em.toDestroy = em.toDestroy[:0]
}

// AddComponent 为实体添加组件，同类型的旧组件被替换
// 实体不存在时返回 false
func (em *EntityManager) AddComponent(id EntityID, component any) bool {
	compMap, ok := em.components[id]
	if !ok || component == nil {
		return false
	}
	compMap[reflect.TypeOf(component)] = component
	return true
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, ok := em.components[id]; ok {
		delete(compMap, componentType)
	}
}

// Component 按 reflect.Type 获取实体的组件
func (em *EntityManager) Component(id EntityID, componentType reflect.Type) (any, bool) {
	compMap, ok := em.components[id]
	if !ok {
		return nil, false
	}
	comp, found := compMap[componentType]
	return comp, found
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, found := em.Component(id, componentType)
	return found
}

// EntitiesWith 查询拥有全部指定组件类型的实体，按 ID 升序返回
func (em *EntityManager) EntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// TypeOf 返回组件类型 T 的 reflect.Type
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// GetComponent 以类型参数获取组件
//
//	grid, ok := ecs.GetComponent[*components.LiquidGridComponent](em, id)
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.Component(id, TypeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// Query 返回拥有组件 T 的所有实体（按 ID 升序）
func Query[T any](em *EntityManager) []EntityID {
	return em.EntitiesWith(TypeOf[T]())
}

// First 返回第一个拥有组件 T 的实体及其组件
// 适用于单例实体（如液体网格、画笔）
func First[T any](em *EntityManager) (EntityID, T, bool) {
	var zero T
	for _, id := range Query[T](em) {
		if comp, ok := GetComponent[T](em, id); ok {
			return id, comp, true
		}
	}
	return 0, zero, false
}
